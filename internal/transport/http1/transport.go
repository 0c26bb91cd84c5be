package http1

import (
	"github.com/indigo-web/lite/internal/transport"
)

var _ transport.Transport = new(Transport)

type Transport struct {
	Parser
	*Serializer
}

func New(respBuff []byte) *Transport {
	return &Transport{
		Parser:     NewParser(),
		Serializer: NewSerializer(respBuff),
	}
}
