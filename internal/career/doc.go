// Package career persists extracted match and player stats per career
// save as plain JSON files, one directory per career.
//
// Layout under the store root:
//
//	careers.json              registry of careers
//	<career-folder>/
//	    matches.json          recorded matches, append order
//	    players.json          player snapshots, append order
//
// The store holds validated, typed values only. Captures and raw pipeline
// output never reach disk; recording happens after extraction succeeds.
package career
