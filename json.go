package telegram

import (
	jsoniter "github.com/json-iterator/go"
)

// jsonCodec handles every encode and decode in the package. The
// stdlib-compatible config keeps struct tags, custom Marshaler
// implementations and error behavior identical to encoding/json.
var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary
