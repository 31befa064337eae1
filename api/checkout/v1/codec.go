// Package checkoutv1 holds the wire contract shared by the auth, checkout and gateway processes.
//
// Messages are plain Go structs carried over gRPC with a JSON codec, so the contract
// can evolve without a protoc toolchain. Clients must select the codec with
// grpc.CallContentSubtype(CodecName); the constructors in this package do it for them.
package checkoutv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
