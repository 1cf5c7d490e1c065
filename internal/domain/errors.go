package domain

import "errors"

var (
	// ErrMalformedBlock is reported when a file ends inside a restricted
	// region or while a trigger is still waiting for its open token. It is a
	// warning: the output accumulated for the file is still written.
	ErrMalformedBlock = errors.New("malformed block")

	// ErrDestinationCollision is reported for every input file whose output
	// path is shared with another input file.
	ErrDestinationCollision = errors.New("destination collision")

	// ErrMissingPackageKey is reported in regroup mode when a file has no
	// declaration line to take the package key from.
	ErrMissingPackageKey = errors.New("missing package key")

	// ErrInvalidRuleSet is returned by ValidateRuleSet.
	ErrInvalidRuleSet = errors.New("invalid rule set")

	// ErrFilesFailed is returned by a run in which at least one file failed.
	ErrFilesFailed = errors.New("files failed")
)
