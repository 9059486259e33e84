// Package scanner enumerates media candidates under the watched music root
// and decides, via a persisted path-set fingerprint, whether a full
// re-enumeration is needed at all.
//
// The fingerprint cache lives in two files under the cache directory: a hex
// md5 digest ("fingerprint") and a newline-delimited candidate list
// ("files.txt"). A missing or unreadable cache is always treated as a miss.
package scanner
