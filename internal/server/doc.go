// Package server implements the readmecraft preview server.
//
// The server exposes the generators over a small JSON API and renders a
// watched Markdown file in the browser, reloading open pages whenever the
// file changes.
//
// # Routes
//
//	GET  /                     rendered watched file, or an index page
//	GET  /api/templates        available templates
//	POST /api/badges           badge block for a badges.SetConfig
//	POST /api/sections/{type}  one section for a sections.ProjectInfo
//	POST /api/readme           README composed from sections
//	POST /api/templates/{name} template rendered with JSON variables
//	POST /api/render           Markdown body to HTML
//	GET  /_readmecraft/reload  live reload WebSocket
//	GET  /metrics              Prometheus metrics
//
// # Usage
//
//	srv := server.New(server.Options{
//	    Address:   "localhost:3700",
//	    WatchFile: "README.md",
//	})
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
package server
