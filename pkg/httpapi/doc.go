// Package httpapi exposes validators over HTTP.
//
// A Registry holds one validator per model, usually built from a models
// YAML file. NewRouter serves:
//
//	POST /v1/models/{model}/validate   {"values": {...}, "only": <selector>}
//	GET  /v1/models
//	GET  /health
//	GET  /metrics
//
// A validation call answers 200 when the values are valid, 422 with the
// per-attribute violations when they are not, 404 for an unknown model,
// 400 for a malformed body and 500 when validation itself fails. Numbers
// in the body are kept as json.Number so integer and float values are not
// conflated.
//
// WithTranslator localizes violation messages: the language is negotiated
// from Accept-Language, echoed in Content-Language, and each violation's
// translation key is looked up in the catalog. Keys the catalog lacks keep
// the built-in English message.
//
// Each outcome increments attrvalid_validations_total{model,outcome}.
package httpapi
