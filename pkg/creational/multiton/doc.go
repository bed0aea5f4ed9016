// Package multiton keeps exactly one configuration Module per module name.
//
// A Manager is the keyed instance registry. Acquiring the same name twice
// returns the same *Module, so settings written through one reference are
// read through the other:
//
//	m := multiton.NewManager()
//
//	db := m.Acquire("database")
//	db.SetConfig("host", "localhost")
//	db.SetConfig("port", 5432)
//
//	again := m.Acquire("database") // again == db
//	host, _ := again.GetConfig("host") // "localhost"
//
// GetConfig reports presence explicitly. A key that was never set returns
// (nil, false); a stored 0, "" or false returns (value, true).
//
// Distinct names always yield distinct, independent modules. Modules are
// never removed from a Manager.
package multiton
