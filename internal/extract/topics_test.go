package extract

import (
	"reflect"
	"testing"
)

func TestDetectTopics_FirstMatchPerTopic(t *testing.T) {
	got := DetectTopics("Draw a Venn diagram for the union of two sets.", DefaultTopicTable())
	want := []string{"set", "operations", "venn"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDetectTopics_TableOrderNotTextOrder(t *testing.T) {
	// "interval" appears before "subset" in the text, but the table
	// orders set before intervals.
	got := DetectTopics("On the interval (1,2), find a subset.", DefaultTopicTable())
	want := []string{"set", "intervals"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDetectTopics_DuplicatesSuppressed(t *testing.T) {
	got := DetectTopics("sets and more sets and a subset of sets", DefaultTopicTable())
	want := []string{"set"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDetectTopics_CaseInsensitive(t *testing.T) {
	got := DetectTopics("ROSTER form of the SET", DefaultTopicTable())
	want := []string{"set", "notation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDetectTopics_NoMatchIsEmptyNotNil(t *testing.T) {
	got := DetectTopics("Completely unrelated prose.", DefaultTopicTable())
	if got == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(got) != 0 {
		t.Errorf("expected no topics, got %v", got)
	}
}
