package ops

// Truncate exposes the output cap for tests.
var Truncate = truncate
