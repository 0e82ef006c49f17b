// Package config provides configuration parsing for htmlnode projects.
//
// The configuration is stored in htmlnode.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "docs",
//	  "site": {
//	    "title": "Docs",
//	    "lang": "en"
//	  },
//	  "dev": {
//	    "port": 3000,
//	    "host": "localhost",
//	    "hotReload": true
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "htmlnode"
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "docs/",
//	    "region": "us-east-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Dev.Port)
package config
