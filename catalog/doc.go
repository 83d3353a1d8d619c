// Package catalog fetches and decodes the movie catalog feed.
//
// The feed is a single JSON document served from a fixed endpoint. One GET
// retrieves every title; there is no pagination and no automatic retry — a
// failed fetch surfaces its error and the caller decides what to do.
//
// # Components
//
//   - Client: issues the catalog GET and classifies transport failures
//   - Decode: maps the raw envelope into Movie values, including the
//     thumbnail selection rule
//   - Errors: ErrBadURL, ErrTimeout, ErrNetwork, StatusError, DecodeError
//
// # Usage
//
//	client, err := catalog.NewClient(url, 30*time.Second, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	movies, err := client.Fetch(context.Background())
//
// A load is all-or-nothing: Fetch never returns a partially decoded
// catalog.
package catalog
