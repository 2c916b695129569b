package constants

const Namespace = "typeref"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// LogRealm is the realm prefix shared by all package loggers.
const LogRealm = Namespace
