package sanitize

import "regexp"

// Rule is a single textual substitution applied to a base name.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply replaces every match of the rule's pattern in s.
func (r Rule) Apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replacement)
}

// strip builds a case-insensitive rule that deletes its matches.
func strip(name, expr string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(`(?i)` + expr)}
}

// DefaultRules is the shipped rule set. Order matters.
var DefaultRules = []Rule{
	// Streaming-site and promotional suffixes
	strip("youtube suffix", `\s*-\s*Youtube`),
	strip("official video", `\s*\(Official\sVideo\)`),
	strip("official music video", `\s*\(Official\sMusic\sVideo\)`),
	strip("official audio", `\s*\(Official\sAudio\)`),
	strip("hd", `\s*\(HD\)`),
	strip("4k", `\s*\(4K\)`),
	strip("official channel", `\s*\(Official\sChannel\)`),
	strip("audio bitrate suffix", `\s*-\s*Audio\s\d*\s*\.*$`),
	strip("resolution", `\s*\(\d{3,4}p\)`),
	strip("bitrate", `\s*\(\d+\skbps\)`),

	// Standalone marketing words
	strip("official", `\s*Official\s`),
	strip("full song", `\s*Full\sSong`),
	strip("hq", `\s*\bHQ\b`),
	strip("lyrics", `\s*\bLYRICS?\b`),
	strip("audio", `\s*\bAUDIO\b`),
	strip("video", `\s*\bVIDEO\b`),
	strip("album", `\s*\bALBUM\b`),
	strip("track", `\s*\bTRACK\b`),
	strip("promo", `\s*\bPROMO\b`),
	strip("demo", `\s*\bDEMO\b`),
	strip("outro", `\s*\bOUTRO\b`),
	strip("intro", `\s*\bINTRO\b`),
	strip("clip", `\s*\bCLIP\b`),
	strip("edit", `\s*\bEDIT\b`),
	strip("cover", `\s*\bCOVER\b`),
	strip("part", `\s*\(.*PART.*\)`),
	strip("bassivity digital", `\s*\-\sBassivity\sDigital.*`),
	strip("hashtags", `\s*#.*\s`),

	strip("remastered", `\s*Remastered\s\d{4}`),
	strip("empty parens", `\s*\(\s*\)`),

	// Leading/trailing spaces and hyphens
	strip("leading space", `^\s+`),
	strip("trailing space", `\s+$`),
	strip("leading hyphen", `^\s*-\s*`),
	strip("trailing hyphen", `\s*-\s*$`),

	// Download sites and credits
	strip("spotify-downloader", `\[SPOTIFY-DOWNLOADER\.COM\]`),
	strip("snap2s", `\(Snap2s\.com\)`),
	strip("prod by jhinsen", `\sProd\.\sby\sJhinsen`),
	strip("free download", `\bfree\sdownload\b`),
	strip("from youtube", `\s*from\s*YouTube\s*`),
	strip("downloaded from youtube", `\s*downloaded\sfrom\sYouTube`),
}
