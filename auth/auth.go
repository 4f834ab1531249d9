// Package auth implements the ownership and permission chain that decides
// whether the launcher may execute its sibling target with elevated rights.
//
// The chain validates three links in a fixed order: the launcher
// executable itself, its parent directory, and the target binary. An
// attacker who can write to any one link could substitute the code that
// ends up running with privileges, so ownership and writability are
// re-derived at every hop instead of trusting a prior result. Any
// unreadable or ambiguous state denies; there is no implicit allow.
package auth

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/TimLuq/run-suid/pkg/ident"
	"github.com/TimLuq/run-suid/pkg/secpath"
	"github.com/TimLuq/run-suid/pkg/sibling"
)

// Authorization is the validated outcome: the target to execute and the
// uid its credentials are taken from.
type Authorization struct {
	Target string
	UID    uint32
}

// Chain evaluates the authorization chain for one identity.
type Chain struct {
	ID  ident.Identity
	Log *logrus.Entry
}

// Authorize runs the chain against the launcher executable at exe, which
// must already be canonical (symlinks resolved by the caller). It returns
// the validated target or a *DeniedError.
func (c *Chain) Authorize(exe string) (*Authorization, error) {
	info, err := c.check(exe, secpath.KindFile, ReasonPermExec)
	if err != nil {
		return nil, err
	}
	c.debugf("executable %s: owner=%d secure=%t", exe, info.UID, info.Secure)
	if c.ID.EUID != info.UID {
		return nil, &DeniedError{Reason: ReasonOwnerExec, Path: exe}
	}

	parent := filepath.Dir(exe)
	info, err = c.check(parent, secpath.KindDir, ReasonPermParent)
	if err != nil {
		return nil, err
	}
	c.debugf("parent %s: owner=%d secure=%t", parent, info.UID, info.Secure)
	if c.ID.EUID != info.UID {
		return nil, &DeniedError{Reason: ReasonOwnerParent, Path: parent}
	}

	target := sibling.Target(parent, filepath.Base(exe))
	info, err = c.checkTarget(target)
	if err != nil {
		return nil, err
	}
	c.debugf("target %s: owner=%d secure=%t", target, info.UID, info.Secure)
	if !allowTarget(c.ID.EUID, info.UID) {
		return nil, &DeniedError{Reason: ReasonOwnerTarget, Path: target}
	}

	return &Authorization{Target: target, UID: info.UID}, nil
}

// allowTarget decides the final ownership comparison. Root may launch a
// target owned by any validated principal; everyone else must own it.
func allowTarget(euid, owner uint32) bool {
	return euid == 0 || euid == owner
}

// check validates one link of the chain: the object must be secure and of
// the wanted kind. An insecure object reports perm, a secure object of the
// wrong kind is an environment failure, as is an unreadable one.
func (c *Chain) check(path string, want secpath.Kind, perm Reason) (secpath.Info, error) {
	info, err := secpath.Check(path)
	if err != nil {
		return info, &DeniedError{Reason: ReasonEnvironment, Path: path, Err: err}
	}
	if !info.Secure {
		return info, &DeniedError{Reason: perm, Path: path}
	}
	if info.Kind != want {
		return info, &DeniedError{Reason: ReasonEnvironment, Path: path}
	}
	return info, nil
}

// checkTarget is check for the target link, where a missing object has a
// dedicated meaning: the companion binary was never installed.
func (c *Chain) checkTarget(path string) (secpath.Info, error) {
	info, err := secpath.Check(path)
	if err != nil {
		reason := ReasonEnvironment
		if errors.Is(err, os.ErrNotExist) {
			reason = ReasonNoTarget
		}
		return info, &DeniedError{Reason: reason, Path: path, Err: err}
	}
	if !info.Secure {
		return info, &DeniedError{Reason: ReasonPermTarget, Path: path}
	}
	if info.Kind != secpath.KindFile {
		return info, &DeniedError{Reason: ReasonEnvironment, Path: path}
	}
	return info, nil
}

func (c *Chain) debugf(format string, args ...any) {
	if c.Log != nil {
		c.Log.Debugf(format, args...)
	}
}
