/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package catalog

// MockCatalogJSON is the voter style catalog used by tests.
const MockCatalogJSON = `{
	"tables": [
		{"name": "VOTES", "partition-column": {"name": "phone_number", "type": "BIGINT"}},
		{"name": "CONTESTANTS", "partition-column": {"name": "contestant_number", "type": "INTEGER"}},
		{"name": "USERS", "partition-column": {"name": "user_name", "type": "VARCHAR"}},
		{"name": "EVENTS", "partition-column": {"name": "created", "type": "TIMESTAMP"}},
		{"name": "ACCOUNTS", "partition-column": {"name": "balance", "type": "DECIMAL"}},
		{"name": "AREA_CODE_STATE"}
	],
	"procedures": [
		{
			"name": "Vote",
			"partition-table": "VOTES",
			"partition-column": "phone_number",
			"statements": ["checkContestant", "insertVote"]
		},
		{
			"name": "GenerateLeaderboard",
			"statements": ["selectTop"]
		},
		{
			"name": "LookupContestant",
			"partition-table": "CONTESTANTS",
			"partition-column": "contestant_name",
			"statements": ["select"]
		},
		{
			"name": "@AdHoc",
			"system": true
		}
	]
}`

// MockCatalog returns a fresh mock catalog.
func MockCatalog() *Catalog {
	cat, err := Read([]byte(MockCatalogJSON))
	if err != nil {
		panic(err)
	}
	return cat
}
