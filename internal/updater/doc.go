// Package updater implements mihoro's own self-upgrade. It checks GitHub
// Releases for new versions, compares them with semver, downloads the asset
// for the running platform, and hands the extracted binary to go-update for
// in-place replacement. A daily-cached version check powers the startup
// update hint.
package updater
