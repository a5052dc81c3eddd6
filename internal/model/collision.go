package model

import (
	"fmt"
	"strings"
)

// CollisionPolicy decides what happens when the destination file exists
type CollisionPolicy string

const (
	// CollisionOverwrite replaces the existing file
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionUniquify writes "Title (2).mp3" and so on
	CollisionUniquify CollisionPolicy = "uniquify"
	// CollisionSkip keeps the existing file and discards the new one
	CollisionSkip CollisionPolicy = "skip"
)

// DefaultCollisionPolicy matches the historical behaviour of replacing files
const DefaultCollisionPolicy = CollisionOverwrite

// CollisionPolicies lists every supported policy
func CollisionPolicies() []CollisionPolicy {
	return []CollisionPolicy{CollisionOverwrite, CollisionUniquify, CollisionSkip}
}

// ParseCollisionPolicy parses a policy name, "" yields the default
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultCollisionPolicy, nil
	}
	for _, p := range CollisionPolicies() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown collision policy %q (want overwrite, uniquify or skip)", s)
}
