// Package record defines the open record and collection model shared by
// every editing surface.
//
// A Record is an open map: the only reserved keys are id, createdAt and
// modifiedAt. Different records in the same collection may carry different
// field sets, and fields the engine does not know about must survive every
// edit path that did not explicitly target them. For that reason records are
// plain value trees decoded with json.Number, never fixed structs - a struct
// schema would silently drop unknown fields on the first round trip.
//
// All other internal packages import record; record imports nothing internal.
package record
