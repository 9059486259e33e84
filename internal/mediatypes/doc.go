// Package mediatypes classifies files in the music root by extension and
// maps them to the MIME types the server advertises.
package mediatypes
