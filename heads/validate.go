package heads

import (
	"encoding/base64"
	"encoding/json"
)

// Validate reports whether head is a usable head reference: a padded
// standard-alphabet base64 string decoding to a JSON object of the
// shape {"textures":{"SKIN":{"url":"..."}}}. The shape check is a
// compatibility contract with the skin service descriptor format and
// must not be loosened or tightened. Every failure mode collapses to
// false; rejection is expected, not exceptional.
func Validate(head string) bool {
	raw, err := base64.StdEncoding.DecodeString(head)
	if err != nil {
		return false
	}
	root := jsonObject(raw)
	if root == nil {
		return false
	}
	textures := member(root, "textures")
	if textures == nil {
		return false
	}
	skin := member(textures, "SKIN")
	if skin == nil {
		return false
	}
	urlRaw, ok := skin["url"]
	if !ok {
		return false
	}
	var url string
	return json.Unmarshal(urlRaw, &url) == nil
}

// jsonObject parses raw as a JSON object, returning nil for anything
// else (including null, which unmarshals into a nil map without error).
func jsonObject(raw []byte) map[string]json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}

func member(obj map[string]json.RawMessage, name string) map[string]json.RawMessage {
	raw, ok := obj[name]
	if !ok {
		return nil
	}
	return jsonObject(raw)
}
