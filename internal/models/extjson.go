package models

import (
	"encoding/json"
	"time"
)

// The upstream backend serializes Mongo documents with bson.json_util, so
// ids and timestamps arrive in extended JSON ({"$oid": ...}, {"$date": ...})
// while hand-built payloads use plain strings. The codec types below accept
// both encodings.

// ObjectID is a Mongo object id that unmarshals from either a plain string
// or the extended JSON {"$oid": "..."} form.
type ObjectID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ObjectID) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*id = ObjectID(plain)
		return nil
	}

	var ext struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(data, &ext); err != nil {
		return err
	}
	*id = ObjectID(ext.OID)
	return nil
}

// String returns the hex form of the id.
func (id ObjectID) String() string {
	return string(id)
}

// MongoTime is a timestamp that unmarshals from an RFC3339 string, the
// extended JSON {"$date": <epoch millis>} form, or {"$date": "<ISO>"}.
type MongoTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *MongoTime) UnmarshalJSON(data []byte) error {
	var plain time.Time
	if err := json.Unmarshal(data, &plain); err == nil {
		t.Time = plain
		return nil
	}

	var ext struct {
		Date json.RawMessage `json:"$date"`
	}
	if err := json.Unmarshal(data, &ext); err != nil {
		return err
	}
	if len(ext.Date) == 0 {
		t.Time = time.Time{}
		return nil
	}

	var millis int64
	if err := json.Unmarshal(ext.Date, &millis); err == nil {
		t.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var iso time.Time
	if err := json.Unmarshal(ext.Date, &iso); err != nil {
		return err
	}
	t.Time = iso
	return nil
}

// MarshalJSON renders the timestamp as a plain RFC3339 string.
func (t MongoTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time)
}
