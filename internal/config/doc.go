// Package config provides configuration parsing for readmecraft projects.
//
// The configuration is stored in readmecraft.json, found by walking up from
// the working directory. Without a file every command runs on defaults.
//
// # Configuration File Structure
//
//	{
//	  "defaults": {
//	    "author": "Ada Lovelace",
//	    "license": "MIT",
//	    "repoUrl": "https://github.com/ada/engine",
//	    "username": "ada"
//	  },
//	  "templatesDir": ".readmecraft/templates",
//	  "output": "README.md",
//	  "preview": {
//	    "host": "localhost",
//	    "port": 3700
//	  },
//	  "logLevel": "warn"
//	}
//
// Relative paths are resolved against the directory holding the file.
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println("Preview:", cfg.PreviewURL())
package config
