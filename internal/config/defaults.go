package config

// DefaultSettingsYAML is the commented template written by `cliscope init`.
const DefaultSettingsYAML = `# cliscope user settings
#
# This file is optional. Every key shown below is commented out and set
# to its default value. Environment variables with the CLISCOPE_ prefix
# take precedence over this file (e.g. CLISCOPE_OUTPUT_DIR).

# output:
#   # Root directory for parsed structure trees.
#   dir: ./out

# crawl:
#   # Maximum subcommand recursion depth below the root command.
#   max_depth: 5
#   # Per-invocation timeout in seconds for help probes. 0 disables the
#   # timeout.
#   probe_timeout_seconds: 0

# logging:
#   # Write logs to ~/.cliscope/logs/cliscope.log in addition to stderr.
#   file_enabled: true
#   max_size_mb: 50
#   max_age_days: 7
#   max_backups: 3
`
