package events

import "github.com/atomicstack/select-control/internal/logging"

type SelectTracer struct{}

type TypeaheadTracer struct{}

type ScrollTracer struct{}

var (
	Select    = SelectTracer{}
	Typeahead = TypeaheadTracer{}
	Scroll    = ScrollTracer{}
)

func (SelectTracer) Open(instance string, open bool) {
	logging.Trace("select.open", map[string]interface{}{"instance": instance, "open": open})
}

func (SelectTracer) Cursor(instance string, cursor int) {
	logging.Trace("select.cursor", map[string]interface{}{"instance": instance, "cursor": cursor})
}

func (SelectTracer) Commit(instance, value string) {
	logging.Trace("select.commit", map[string]interface{}{"instance": instance, "value": value})
}

func (SelectTracer) Register(instance, value, label string) {
	logging.Trace("select.register", map[string]interface{}{"instance": instance, "value": value, "label": label})
}

func (SelectTracer) Unregister(instance, value string) {
	logging.Trace("select.unregister", map[string]interface{}{"instance": instance, "value": value})
}

func (TypeaheadTracer) Append(instance, query string) {
	logging.Trace("typeahead.append", map[string]interface{}{"instance": instance, "query": query})
}

func (TypeaheadTracer) Match(instance, query string, index int) {
	logging.Trace("typeahead.match", map[string]interface{}{"instance": instance, "query": query, "index": index})
}

func (TypeaheadTracer) Reset(instance string) {
	logging.Trace("typeahead.reset", map[string]interface{}{"instance": instance})
}

func (ScrollTracer) IntoView(instance string, index int) {
	logging.Trace("scroll.into-view", map[string]interface{}{"instance": instance, "index": index})
}

func (ScrollTracer) AutoStart(instance string, direction int) {
	logging.Trace("scroll.auto-start", map[string]interface{}{"instance": instance, "direction": direction})
}

func (ScrollTracer) AutoStop(instance string) {
	logging.Trace("scroll.auto-stop", map[string]interface{}{"instance": instance})
}
