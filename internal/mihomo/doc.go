// Package mihomo resolves which mihomo release artifact fits this machine:
// it maps the host CPU architecture to mihomo's asset naming convention,
// validates explicit architecture overrides, looks up the latest published
// version for a release channel, and builds the final download URL.
package mihomo
