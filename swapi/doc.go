// Package swapi provides a client for the Star Wars API (https://swapi.dev).
//
// Only the films collection is used. The client issues a plain GET with no
// authentication, no query parameters and no custom headers, and decodes the
// response into Film values.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := swapi.NewClient(swapi.DefaultBaseURL, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	films, err := client.ListFilms(ctx)
//
// # Error Handling
//
// A response with a non-2xx status is reported as a *RequestError whose
// message is always "Something went wrong!!!". Transport and decoding
// failures are wrapped with their underlying error:
//
//	var reqErr *swapi.RequestError
//	if errors.As(err, &reqErr) {
//		fmt.Println(reqErr.StatusCode)
//	}
package swapi
