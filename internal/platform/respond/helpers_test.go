package respond

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
)

func humaAPI(router chi.Router) huma.API {
	return humachi.New(router, huma.DefaultConfig("RespondTest", "test"))
}
