// Package domain contains the shared kernel used across aggregate sub-packages.
// Aggregate-specific types live in sub-packages (domain/team, domain/backlog,
// domain/sprint). This root package holds the rule-violation error taxonomy and
// the domain event contract shared by all aggregates.
package domain
