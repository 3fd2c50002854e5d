package resolver

import "github.com/0xalexb/cfgchain/section"

type candidateID struct {
	scope int
	key   section.Key
}

type candidateList struct {
	items []Candidate
	seen  map[candidateID]struct{}
}

// add appends a probe unless the same key was already queued for the same
// scope position. Default and Fallback share a name, so positions are used.
func (l *candidateList) add(position int, sect *section.Section, key section.Key) {
	id := candidateID{scope: position, key: key}
	if _, ok := l.seen[id]; ok {
		return
	}

	l.seen[id] = struct{}{}
	l.items = append(l.items, Candidate{Scope: sect, Key: key})
}

func buildCandidates(scope []*section.Section, option string, chain []string, profileFirst, configIndependent bool) []Candidate {
	list := candidateList{
		items: make([]Candidate, 0, len(scope)*(len(chain)+1)),
		seen:  make(map[candidateID]struct{}, len(scope)*(len(chain)+1)),
	}
	bare := section.Bare(option)

	if !profileFirst {
		for position, sect := range scope {
			for _, token := range chain {
				list.add(position, sect, section.Scoped(option, token))

				if configIndependent {
					list.add(position, sect, bare)
				}
			}

			list.add(position, sect, bare)
		}

		return list.items
	}

	for _, token := range chain {
		for position, sect := range scope {
			list.add(position, sect, section.Scoped(option, token))

			if configIndependent {
				list.add(position, sect, bare)
			}
		}
	}

	for position, sect := range scope {
		list.add(position, sect, bare)
	}

	return list.items
}
