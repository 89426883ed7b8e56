/*
Package serviceroulette is a Lambda function that reads a service catalog from
DynamoDB and picks one service at random.

Every invocation follows the same path:
  - Scan the configured table to the end (datastore/ddb)
  - Pick one record uniformly at random (selector)
  - Return the full catalog and the pick with permissive CORS headers (handler)

A failed scan is returned to the Lambda runtime unchanged and is never retried.
An empty table yields an empty serviceList and a null randomService.

Response:

	{
	  "statusCode": 200,
	  "body": {
	    "serviceList": [ {...}, ... ],
	    "randomService": {...}
	  },
	  "headers": {
	    "Access-Control-Allow-Origin": "*",
	    "Access-Control-Allow-Credentials": true
	  }
	}

Configuration is read once at start-up from defaults, an optional .env file, an
optional YAML file (ROULETTE_CONFIG_FILE) and ROULETTE_* environment variables.
See package config.
*/
package serviceroulette
