// Package skins exposes the catalog and the reconciliation engine over HTTP.
//
// Routes (under /skins):
//
//	GET  /characters        characters with id and skin count
//	GET  /characters/:name  known skins of one character
//	GET  /ids/:skin_id      catalog entry owning a skin id
//	GET  /classify?name=    tier and base of a skin name
//	POST /suggest           synthesized id for {character_id|character, skin_name}
//	POST /reconcile         plan for a posted harvest; nothing is written
//
// Every request reads the same cached catalog snapshot; a reconcile request owns
// its own index, so concurrent requests never share run state.
package skins
