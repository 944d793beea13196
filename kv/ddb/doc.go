/*
Package ddb implements kv.Store on Amazon DynamoDB.

Every key becomes one item in a single table using the single object key
pattern (PK and SK both hold the key) and the raw value lives in a binary
"Value" attribute:

	store, err := ddb.Open(ctx, ddb.ClientOptions{
	    Region:   "us-east-1",
	    Endpoint: "http://localhost:8000", // optional, DynamoDB Local
	}, "relstore")

The table must exist with a string partition key "PK" and string sort key "SK".
*/
package ddb
