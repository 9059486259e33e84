// Package lyrics parses LRC timed-lyrics files into timestamped lines.
package lyrics
