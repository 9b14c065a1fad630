package constants

// TriggerType records what created a sync job.
type TriggerType string

const (
	TriggerManual    TriggerType = "MANUAL"
	TriggerWebhook   TriggerType = "WEBHOOK"
	TriggerScheduled TriggerType = "SCHEDULED"
)

// PresetType selects between a stored optimization preset and a one-off
// custom prompt supplied at job creation.
type PresetType string

const (
	PresetStored PresetType = "PRESET"
	PresetCustom PresetType = "CUSTOM_PROMPT"
)

// TriggerTypes returns all trigger types as strings, for schema validation.
func TriggerTypes() []string {
	return []string{string(TriggerManual), string(TriggerWebhook), string(TriggerScheduled)}
}

// PresetTypes returns all preset types as strings, for schema validation.
func PresetTypes() []string {
	return []string{string(PresetStored), string(PresetCustom)}
}
