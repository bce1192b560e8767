package share

// VERSION GRIP Dashboard Engine Version
const VERSION = "0.3.1"

// PRVERSION GRIP Dashboard Engine PR Commit
const PRVERSION = "DEV"

// BUILDIN If true, the application will be built into a single artifact
const BUILDIN = false

// BUILDNAME The name of the artifact
const BUILDNAME = "gripdash"
