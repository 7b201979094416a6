// Package devserver serves the bundler output of an effective build
// configuration and forwards API calls to backend services.
//
// Static files from output.path are exposed under output.publicPath. Every
// devServer.proxy rule mounts a reverse proxy at its path prefix; the
// rule's pathRewrite expressions are applied to the request path before it
// is forwarded, so {"^/management": ""} strips the prefix.
package devserver
