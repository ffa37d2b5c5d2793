// Package pjson provides a persistent JSON value model.
//
// A Value is one of Null, Number, String, Bool, Array or Object. Arrays and
// Objects are backed by persistent vectors, so Clone is O(1) and a clone
// shares storage with its source until either side writes. Objects keep
// their keys sorted and look them up by binary search.
//
// Values are read with the projection methods (AsStr, AsObject, ...) and
// with Index, which never fails:
//
//	name := doc.Index(pjson.Key("user")).Index(pjson.Key("name"))
//
// and written in place through pointers:
//
//	*doc.IndexMut(pjson.Key("tags")) = pjson.FromSlice()
//	doc.IndexMut(pjson.Key("tags")).AsArrayMut().PushBack(pjson.FromString("go"))
//
// FromJSON converts trees produced by encoding/json, and Decoder reads JSON
// text directly.
package pjson
