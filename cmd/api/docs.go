// Package main Sales Agent API
//
// WhatsApp sales automation for the Occhiale and Ekkle product lines.
// Receives Evolution API and payment webhooks, runs the scheduled
// prospecting jobs and serves the sales dashboard.
//
// Schemes: http, https
// Host: localhost:8080
// BasePath: /api/v1
// Version: 2.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
// - text/csv
//
// Security:
// - bearerAuth: []
//
// SecurityDefinitions:
// bearerAuth:
//   type: apiKey
//   name: Authorization
//   in: header
//   description: JWT token in format "Bearer {token}"
//
// swagger:meta
package main
