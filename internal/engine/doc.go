package engine

// Package engine wraps the external extraction engine (yt-dlp via
// github.com/lrstanley/go-ytdlp) behind a narrow interface. The rest of the
// app treats it as a black box: give it a URL and an option profile, get back
// descriptive metadata or an error. Progress flows out through an observer
// interface so the core stays decoupled from terminal rendering.
