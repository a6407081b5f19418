package ast

// Walk traverses the tree rooted at n in document order, calling fn for
// each node. Returning false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch v := n.(type) {
	case *Mapping:
		for _, e := range v.Entries {
			Walk(e.Key, fn)
			Walk(e.Value, fn)
		}
	case *Sequence:
		for _, item := range v.Items {
			Walk(item.Node, fn)
		}
	}
}

// CollectPlays returns the plays (host blocks) of a playbook document:
// top-level sequence items whose mapping carries a hosts declaration.
func CollectPlays(doc *Document) []*Play {
	seq, ok := doc.Root.(*Sequence)
	if !ok {
		return nil
	}

	var plays []*Play
	for _, item := range seq.Items {
		if m, ok := item.Node.(*Mapping); ok {
			if play, ok := ClassifyPlay(m); ok {
				plays = append(plays, play)
			}
		}
	}
	return plays
}

// CollectTasks returns every task in the document: tasks inside play
// sections for playbooks, or top-level sequence items for task files.
// Tasks nested in block/rescue/always are included.
func CollectTasks(doc *Document) []*Task {
	seq, ok := doc.Root.(*Sequence)
	if !ok {
		return nil
	}

	plays := CollectPlays(doc)
	if len(plays) == 0 {
		return tasksFromSequence(seq)
	}

	var tasks []*Task
	for _, play := range plays {
		for _, section := range play.Sections {
			if section.Key.Value == "roles" {
				continue
			}
			if sub, ok := section.Value.(*Sequence); ok {
				tasks = append(tasks, tasksFromSequence(sub)...)
			}
		}
	}
	return tasks
}

func tasksFromSequence(seq *Sequence) []*Task {
	var tasks []*Task
	for _, item := range seq.Items {
		m, ok := item.Node.(*Mapping)
		if !ok {
			continue
		}
		task, ok := ClassifyTask(m)
		if !ok {
			continue
		}
		tasks = append(tasks, task)

		// Recurse into block constructs.
		for _, e := range m.Entries {
			if !blockKeys[e.Key.Value] {
				continue
			}
			if sub, ok := e.Value.(*Sequence); ok {
				tasks = append(tasks, tasksFromSequence(sub)...)
			}
		}
	}
	return tasks
}
