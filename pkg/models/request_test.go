package models

import "testing"

func TestTaskText(t *testing.T) {
	tests := []struct {
		name string
		req  TaskRequest
		want string
	}{
		{
			name: "all fields present",
			req:  TaskRequest{Name: "helper", Description: "summarize email", Category: "office"},
			want: "summarize email office helper",
		},
		{
			name: "description only",
			req:  TaskRequest{Description: "write code to parse a log file"},
			want: "write code to parse a log file",
		},
		{
			name: "empty fields skipped",
			req:  TaskRequest{Name: "helper", Category: ""},
			want: "helper",
		},
		{
			name: "all empty",
			req:  TaskRequest{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.TaskText(); got != tt.want {
				t.Errorf("TaskText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHasNeed(t *testing.T) {
	req := TaskRequest{Needs: []string{"web_search", "rag"}}
	if !req.HasNeed("web_search") {
		t.Error("HasNeed(web_search) = false, want true")
	}
	if !req.HasNeed("rag") {
		t.Error("HasNeed(rag) = false, want true")
	}
	if req.HasNeed("code_tools") {
		t.Error("HasNeed(code_tools) = true, want false")
	}
	if (TaskRequest{}).HasNeed("rag") {
		t.Error("HasNeed on empty needs = true, want false")
	}
}
