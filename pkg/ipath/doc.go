// Package ipath talks to the iPath pathway-mapping web service.
//
// # Overview
//
// iPath renders metabolic and regulatory pathway maps. A request is a
// form-encoded POST carrying a selection (see package selection) and a
// fixed set of rendering options. This package provides:
//
//   - [Options] and [ToParameters]: the request body encoder
//   - [Client.GetMap]: render a map and save it as <name>.svg
//   - [Client.Inspect]: submit to the interactive endpoint and return the
//     raw response
//
// # Usage
//
//	client := ipath.NewClient(ipath.WithTimeout(2 * time.Minute))
//	opts := ipath.DefaultOptions()
//	opts.IncludeSecondary = true
//	path, err := client.GetMap(ctx, text, "metabolism", opts)
//
// Requests are issued one at a time and never retried. A non-success
// status is returned as an [errors.RemoteServiceError] carrying the
// response body.
package ipath
