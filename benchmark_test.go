package beacon

import (
	"testing"

	"github.com/statbeam/beacon-go/adapters"
)

func BenchmarkBuildDefaultPayload(b *testing.B) {
	builder := NewPayloadBuilder(
		stubDeviceID{id: "device-1"},
		stubSystemInfo{os: "linux amd64"},
		adapters.StaticAppInfo{Name: "MyApp", Bundle: "com.example.app", Company: "Example Inc"},
		RuntimeModeEditor,
		adapters.NewNoOpLoggerAdapter(),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = builder.BuildDefaultPayload("UA-1", "1.2.3", nil)
	}
}

func BenchmarkBuildEventPayload(b *testing.B) {
	defaultPayload := "v=1&t=event&tid=UA-1&cid=device-1&ua=linux+amd64&av=1.2.3&ds=editor"
	value := Int(42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildEventPayload(defaultPayload, "Editor", "opened", value)
	}
}

func BenchmarkVersionGate_NoChange(b *testing.B) {
	store := adapters.NewMemoryPreferenceStore()
	_ = store.SetString("beacon.UA-1.LastKnownPackageVersion", "1.2.3")
	sink := func(category, action string, value *int) {}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CheckAndMaybeTrackUpdate("UA-1", "1.2.3", store, sink)
	}
}
