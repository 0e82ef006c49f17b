// Package publish renders every page of a site and uploads it to S3.
//
// Each page is stored as <prefix><path>/index.html, so "/" becomes
// "index.html" and "/docs/intro" becomes "docs/intro/index.html", which
// static website hosting serves at the page path. Pages whose path holds
// route parameters cannot be enumerated and are skipped.
//
//	client := publish.NewClient(publish.ClientConfig{Region: "eu-west-1"})
//	p := publish.New(client, s, publish.Config{Bucket: "my-site"})
//	result, err := p.Publish(ctx)
package publish
