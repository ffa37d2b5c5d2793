package models

// JSONValue is a generic type to represent any JSON value.
// This can be a string, json.Number, bool, nil, JSONObject or JSONArray.
type JSONValue interface{}

// Member is one key/value pair of a JSON object, as written in the source.
type Member struct {
	Key   string
	Value JSONValue
}

// JSONObject represents a JSON object in source order. Repeated keys are
// kept; deciding which one wins is left to the consumer.
type JSONObject []Member

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// Get returns the value of the last member named key.
func (o JSONObject) Get(key string) (JSONValue, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}
