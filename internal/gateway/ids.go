package gateway

import (
	"encoding/json"
	"strconv"
)

// ExtractID normalizes the persisted document's identifier at the gateway
// boundary. Backends disagree about the shape: a canonical top-level "id", a
// store-native "_id", or a wrapped document under "_doc". Core editor logic
// never branches on these shapes; it only ever sees the one id returned
// here. ErrMissingIdentifier when no usable id is present.
func ExtractID(raw json.RawMessage) (string, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", ErrMissingIdentifier
	}

	if id := idValue(doc["_id"]); id != "" {
		return id, nil
	}
	if id := idValue(doc["id"]); id != "" {
		return id, nil
	}
	if inner, ok := doc["_doc"].(map[string]interface{}); ok {
		if id := idValue(inner["_id"]); id != "" {
			return id, nil
		}
	}
	return "", ErrMissingIdentifier
}

// DocID is a document identifier on a fetched record. Backends serialize it
// as either a JSON string or a number; decoding folds both shapes into the
// string form the rest of the client works with.
type DocID string

func (d *DocID) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = DocID(idValue(v))
	return nil
}

func idValue(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id > 0 {
			return strconv.FormatInt(int64(id), 10)
		}
	}
	return ""
}
