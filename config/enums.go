package config

// Specification of requested serialization form for resolved colors.
// ENUM(legacy, modern)
type Form int
