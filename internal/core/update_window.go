package core

import (
	"sort"

	"pspec/internal/ports"
	"pspec/internal/types"
)

// walkUpdates visits the history entries newer than oldRelease, newest
// first, and stops at the entry whose release equals oldRelease. When no
// entry matches, the whole history is visited. visit returns false to
// stop early.
func walkUpdates(history []types.Update, oldRelease string, visit func(types.Update) bool) {
	for _, update := range history {
		if update.Release == oldRelease {
			return
		}
		if !visit(update) {
			return
		}
	}
}

// appliesTo reports whether a scoped type or action with the given
// package filter applies to pkgName.
func appliesTo(filter string, pkgName string) bool {
	return filter == "" || filter == pkgName
}

// updateTypesOf returns the type names an entry carries for pkgName, the
// legacy tag first.
func updateTypesOf(update types.Update, pkgName string) []string {
	var names []string
	if update.Type != "" {
		names = append(names, update.Type)
	}
	for _, tag := range update.Types {
		if appliesTo(tag.Package, pkgName) {
			names = append(names, tag.Name)
		}
	}
	return names
}

// UpdateTypes returns the sorted set of update types of every release
// of pkg newer than oldRelease.
func UpdateTypes(pkg types.Package, oldRelease string) []string {
	set := map[string]struct{}{}
	walkUpdates(pkg.History, oldRelease, func(update types.Update) bool {
		for _, name := range updateTypesOf(update, pkg.Name) {
			set[name] = struct{}{}
		}
		return true
	})
	return sortedSet(set)
}

// HasUpdateType reports whether any release of pkg newer than oldRelease
// carries the given update type.
func HasUpdateType(pkg types.Package, typeName string, oldRelease string) bool {
	found := false
	walkUpdates(pkg.History, oldRelease, func(update types.Update) bool {
		for _, name := range updateTypesOf(update, pkg.Name) {
			if name == typeName {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// UpdateActions returns, for every action required by a release of pkg
// newer than oldRelease, the sorted set of packages it targets. An
// action without an explicit target targets pkg itself.
func UpdateActions(pkg types.Package, oldRelease string) map[string][]string {
	sets := map[string]map[string]struct{}{}
	walkUpdates(pkg.History, oldRelease, func(update types.Update) bool {
		for _, action := range update.Requires {
			if !appliesTo(action.Package, pkg.Name) {
				continue
			}
			target := action.Target
			if target == "" {
				target = pkg.Name
			}
			if sets[action.Name] == nil {
				sets[action.Name] = map[string]struct{}{}
			}
			sets[action.Name][target] = struct{}{}
		}
		return true
	})
	actions := make(map[string][]string, len(sets))
	for name, targets := range sets {
		actions[name] = sortedSet(targets)
	}
	return actions
}

// PendingUpdateActions is UpdateActions relative to the installed
// release of pkg. A package that is not installed has nothing to migrate
// from and yields an empty map.
func PendingUpdateActions(pkg types.Package, installed ports.InstalledStatePort) map[string][]string {
	if installed == nil || !installed.IsInstalled(pkg.Name) {
		return map[string][]string{}
	}
	oldRelease, ok := installed.InstalledReleaseOf(pkg.Name)
	if !ok {
		return map[string][]string{}
	}
	return UpdateActions(pkg, oldRelease)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
