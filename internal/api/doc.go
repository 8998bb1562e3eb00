// Package api provides a read-only Kalshi REST API client.
//
// Endpoints:
//   - Production: https://api.elections.kalshi.com/trade-api/v2
//   - Demo: https://demo-api.kalshi.co/trade-api/v2
//
// Every request is signed with RSA-PSS headers (KALSHI-ACCESS-KEY,
// KALSHI-ACCESS-TIMESTAMP, KALSHI-ACCESS-SIGNATURE).
package api
