// Package badges builds shields.io badge Markdown for README files.
//
// Every builder is a pure function that returns a single Markdown image link.
// Nothing is fetched: the functions only assemble URL text.
//
// # Usage
//
//	md := badges.Set(badges.SetConfig{
//	    Username:    "octocat",
//	    Repo:        "hello-world",
//	    PackageName: "hello-world",
//	    License:     "MIT",
//	    Languages:   []string{"Go", "TypeScript"},
//	})
//
// Set emits the build badge first, then the npm version and download badges
// when a package name is given, then the license badge, then one line with
// all language badges.
package badges
