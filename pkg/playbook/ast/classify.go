package ast

import "strings"

// Key vocabularies for semantic classification. Classification is pattern
// matching over key sets: a generic mapping is recognized as a task or a
// play by the keys it carries, never by a separate grammar.
var (
	// taskOptionKeys are keys that configure task execution rather than
	// the module invocation itself.
	taskOptionKeys = map[string]bool{
		"any_errors_fatal": true,
		"args":             true,
		"async":            true,
		"become":           true,
		"become_flags":     true,
		"become_method":    true,
		"become_user":      true,
		"changed_when":     true,
		"check_mode":       true,
		"delay":            true,
		"delegate_facts":   true,
		"delegate_to":      true,
		"diff":             true,
		"environment":      true,
		"failed_when":      true,
		"ignore_errors":    true,
		"listen":           true,
		"no_log":           true,
		"notify":           true,
		"poll":             true,
		"register":         true,
		"retries":          true,
		"run_once":         true,
		"throttle":         true,
		"timeout":          true,
		"until":            true,
		"vars":             true,
		"when":             true,
	}

	// loopKeys are the looping constructs. All with_* forms are matched by
	// prefix in isLoopKey; "loop" is the non-deprecated form.
	loopKeys = map[string]bool{
		"loop":         true,
		"loop_control": true,
	}

	// deprecatedTaskKeys maps deprecated keys to their replacements.
	deprecatedTaskKeys = map[string]string{
		"sudo":          "become",
		"sudo_user":     "become_user",
		"with_items":    "loop",
		"with_list":     "loop",
		"with_dict":     "loop with the dict2items filter",
		"with_fileglob": "loop with the fileglob lookup",
		"with_together": "loop with the zip filter",
		"with_nested":   "loop with the product filter",
	}

	// playSectionKeys are ordered play sections that follow the host
	// declaration and its options.
	playSectionKeys = map[string]bool{
		"pre_tasks":  true,
		"roles":      true,
		"tasks":      true,
		"post_tasks": true,
		"handlers":   true,
	}

	// taskMetaKeys are identification keys that precede the module
	// invocation within a task.
	taskMetaKeys = map[string]bool{
		"name": true,
		"tags": true,
	}

	// blockKeys mark a block construct rather than a module invocation.
	blockKeys = map[string]bool{
		"block":  true,
		"rescue": true,
		"always": true,
	}
)

// IsTaskOptionKey reports whether key is a task execution option.
func IsTaskOptionKey(key string) bool { return taskOptionKeys[key] }

// IsLoopKey reports whether key is a looping construct, including the
// deprecated with_* family.
func IsLoopKey(key string) bool {
	return loopKeys[key] || strings.HasPrefix(key, "with_")
}

// DeprecatedReplacement returns the replacement for a deprecated task key
// and whether the key is deprecated.
func DeprecatedReplacement(key string) (string, bool) {
	r, ok := deprecatedTaskKeys[key]
	return r, ok
}

// IsPlaySectionKey reports whether key names an ordered play section.
func IsPlaySectionKey(key string) bool { return playSectionKeys[key] }

// Task is the semantic view of a mapping that matches task shape: optional
// name and tags, exactly one module-invocation entry, plus loop and option
// entries. It is derived by classification, not by a separate parse.
type Task struct {
	Mapping *Mapping

	Name   *MappingEntry // nil when the task is unnamed
	Tags   *MappingEntry // nil when untagged
	Module *MappingEntry // the module invocation, nil for block tasks
	Block  *MappingEntry // block/rescue/always entry, nil for plain tasks

	Loops   []*MappingEntry
	Options []*MappingEntry
}

// ModuleName returns the invoked module key, or "" for block tasks.
func (t *Task) ModuleName() string {
	if t.Module == nil {
		return ""
	}
	return t.Module.Key.Value
}

// IsFQCN reports whether name is a dotted fully-qualified collection name
// such as "ansible.builtin.service".
func IsFQCN(name string) bool {
	return strings.Count(name, ".") >= 2
}

// ClassifyTask recognizes task shape in a generic mapping. A mapping is a
// task when it carries a module invocation or block entry alongside only
// task vocabulary keys. The second return is false for mappings that do
// not match (variable maps, play mappings, module argument maps).
func ClassifyTask(m *Mapping) (*Task, bool) {
	if m == nil || len(m.Entries) == 0 {
		return nil, false
	}
	if m.Entry("hosts") != nil {
		return nil, false
	}

	task := &Task{Mapping: m}
	for _, e := range m.Entries {
		key := e.Key.Value
		switch {
		case key == "name":
			task.Name = e
		case key == "tags":
			task.Tags = e
		case blockKeys[key]:
			if key == "block" {
				task.Block = e
			}
		case IsLoopKey(key):
			task.Loops = append(task.Loops, e)
		case taskOptionKeys[key] || deprecatedTaskKeys[key] != "":
			task.Options = append(task.Options, e)
		default:
			if task.Module != nil {
				// Two unrecognized keys: not task shape.
				return nil, false
			}
			task.Module = e
		}
	}

	if task.Module == nil && task.Block == nil {
		return nil, false
	}
	return task, true
}

// Play is the semantic view of a top-level host block.
type Play struct {
	Mapping *Mapping

	Name     *MappingEntry
	Hosts    *MappingEntry
	Options  []*MappingEntry // play options (become, gather_facts, vars, ...)
	Sections []*MappingEntry // pre_tasks/roles/tasks/post_tasks/handlers in source order
}

// ClassifyPlay recognizes a play (host block) in a generic mapping. The
// mapping must carry a "hosts" declaration.
func ClassifyPlay(m *Mapping) (*Play, bool) {
	if m == nil {
		return nil, false
	}
	hosts := m.Entry("hosts")
	if hosts == nil {
		return nil, false
	}

	play := &Play{Mapping: m, Hosts: hosts}
	for _, e := range m.Entries {
		key := e.Key.Value
		switch {
		case key == "hosts":
		case key == "name":
			play.Name = e
		case playSectionKeys[key]:
			play.Sections = append(play.Sections, e)
		default:
			play.Options = append(play.Options, e)
		}
	}
	return play, true
}
