package configmodel

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-admin-config/models"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func topLevelKeys(t *testing.T, data []byte) []string {
	t.Helper()
	var keys []string
	gjson.ParseBytes(data).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	slices.Sort(keys)
	return keys
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

// ── Merge: absent remote ─────────────────────────────────────────────────────

func TestMerge_AbsentRemoteReturnsDefaults(t *testing.T) {
	cases := map[string]json.RawMessage{
		"nil":        nil,
		"empty":      json.RawMessage(``),
		"whitespace": json.RawMessage("  \n"),
		"null":       json.RawMessage(`null`),
		"empty obj":  json.RawMessage(`{}`),
		"array":      json.RawMessage(`[1,2,3]`),
		"string":     json.RawMessage(`"garbled"`),
		"number":     json.RawMessage(`42`),
		"broken":     json.RawMessage(`{"email":`),
	}

	for name, remote := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, DefaultIDCard(), Merge(DefaultIDCard(), remote))
			assert.Equal(t, DefaultNotifications(), Merge(DefaultNotifications(), remote))
		})
	}
}

func TestMerge_ScenarioB_BloodTypeOverride(t *testing.T) {
	remote := json.RawMessage(`{"tipoSangre":{"visible":true,"obligatorio":false,"orden":5}}`)

	merged := Merge(DefaultIDCard(), remote)

	def := DefaultIDCard()
	assert.Equal(t, models.FieldSpec{Visible: true, Required: false, Order: 5}, merged.BloodType)
	assert.Equal(t, def.FullName, merged.FullName)
	assert.Equal(t, def.Email, merged.Email)
	assert.Equal(t, def.Phone, merged.Phone)
	assert.Equal(t, def.Address, merged.Address)
	assert.Equal(t, def.QRConfig, merged.QRConfig)
	assert.Equal(t, 5, ProjectIDCard(merged).VisibleFieldCount)
}

func TestMerge_NestedObjectReplacedInFull(t *testing.T) {
	merged := Merge(DefaultIDCard(), json.RawMessage(`{"email":{"visible":false}}`))

	assert.Equal(t, models.FieldSpec{}, merged.Email, "missing sub-keys must not fall back to defaults")
	assert.Equal(t, DefaultIDCard().FullName, merged.FullName)
}

func TestMerge_ChannelReplacedInFull(t *testing.T) {
	merged := Merge(DefaultNotifications(), json.RawMessage(`{"smsNotifications":{"enabled":true}}`))

	assert.True(t, merged.SMS.Enabled)
	assert.False(t, merged.SMS.Event(models.EventEmergency))
	assert.Equal(t, DefaultNotifications().Push, merged.Push)
}

// ── Merge: key union property ────────────────────────────────────────────────

func TestMerge_KeysAreUnionAndRemoteWins(t *testing.T) {
	payloads := []string{
		`{"legalText":"custom legal"}`,
		`{"templateEmergency":{"subject":"S","body":"B {{location}}","enabled":false},"extraKey":{"a":1}}`,
		`{"pushNotifications":{"enabled":false,"route_start":true,"route_end":false,"safety_alert":true,"support_message":false,"emergency":true}}`,
		`{"unknownA":1,"unknownB":[true,false],"legalText":""}`,
	}

	for _, p := range payloads {
		t.Run(p, func(t *testing.T) {
			def := DefaultNotifications()
			defJSON := mustMarshal(t, def)
			remote := json.RawMessage(p)

			merged := Merge(def, remote)
			mergedJSON := mustMarshal(t, merged)

			want := append(topLevelKeys(t, defJSON), topLevelKeys(t, remote)...)
			slices.Sort(want)
			want = slices.Compact(want)
			assert.Equal(t, want, topLevelKeys(t, mergedJSON))

			gjson.ParseBytes(remote).ForEach(func(key, value gjson.Result) bool {
				assert.JSONEq(t, value.Raw, gjson.GetBytes(mergedJSON, gjson.Escape(key.String())).Raw, "key %s", key)
				return true
			})
			gjson.ParseBytes(defJSON).ForEach(func(key, value gjson.Result) bool {
				if gjson.GetBytes(remote, gjson.Escape(key.String())).Exists() {
					return true
				}
				assert.JSONEq(t, value.Raw, gjson.GetBytes(mergedJSON, gjson.Escape(key.String())).Raw, "key %s", key)
				return true
			})
		})
	}
}

func TestMerge_UnknownKeysSurviveRoundTrip(t *testing.T) {
	merged := Merge(DefaultIDCard(), json.RawMessage(`{"qrLogo":true,"theme":{"color":"red"}}`))

	require.Len(t, merged.Extra, 2)
	assert.JSONEq(t, `true`, string(merged.Extra["qrLogo"]))

	data := mustMarshal(t, merged)
	assert.Equal(t, "red", gjson.GetBytes(data, "theme.color").String())

	again := Merge(DefaultIDCard(), data)
	assert.Equal(t, merged, again)
}

// ── Merge: degraded keys ─────────────────────────────────────────────────────

func TestMergeWithReport_DropsUndecodableKeys(t *testing.T) {
	remote := json.RawMessage(`{"email":5,"telefono":{"visible":false,"obligatorio":true,"orden":9},"qrDiasExpiracion":"30"}`)

	merged, dropped := MergeWithReport(DefaultIDCard(), remote)

	assert.Equal(t, []string{"email", "qrDiasExpiracion"}, dropped)
	assert.Equal(t, DefaultIDCard().Email, merged.Email)
	assert.Equal(t, DefaultQRExpiryDays, merged.ExpiryDays)
	assert.Equal(t, models.FieldSpec{Visible: false, Required: true, Order: 9}, merged.Phone)
}

func TestMergeWithReport_NonBooleanChannelKeyDropsChannel(t *testing.T) {
	merged, dropped := MergeWithReport(DefaultNotifications(),
		json.RawMessage(`{"emailNotifications":{"enabled":true,"label":"x"}}`))

	assert.Equal(t, []string{"emailNotifications"}, dropped)
	assert.Equal(t, DefaultNotifications().Email, merged.Email)
}

func TestMergeWithReport_NullCountsAsAbsent(t *testing.T) {
	merged, dropped := MergeWithReport(DefaultIDCard(), json.RawMessage(`{"email":null,"qrAlergias":true}`))

	assert.Empty(t, dropped)
	assert.Equal(t, DefaultIDCard().Email, merged.Email)
	assert.True(t, merged.Allergies)
}

// ── Merge: immutability ──────────────────────────────────────────────────────

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	def := DefaultNotifications()
	def.Extra = map[string]json.RawMessage{"keep": json.RawMessage(`1`)}
	before := Clone(def)
	remote := json.RawMessage(`{"keep":2,"pushNotifications":{"enabled":false}}`)
	remoteBefore := string(remote)

	merged := Merge(def, remote)
	merged.Email.Events[models.EventRouteStart] = true
	merged.Extra["keep"] = json.RawMessage(`3`)

	assert.Equal(t, before, def)
	assert.Equal(t, remoteBefore, string(remote))
}

func TestClone_IsIndependent(t *testing.T) {
	def := DefaultNotifications()
	c := Clone(def)
	c.Push.Events[models.EventEmergency] = false

	assert.True(t, def.Push.Event(models.EventEmergency))
}

// ── IsObject ─────────────────────────────────────────────────────────────────

func TestIsObject(t *testing.T) {
	assert.True(t, IsObject(json.RawMessage(`{}`)))
	assert.True(t, IsObject(json.RawMessage(` {"a":1} `)))
	assert.False(t, IsObject(nil))
	assert.False(t, IsObject(json.RawMessage(`null`)))
	assert.False(t, IsObject(json.RawMessage(`[]`)))
	assert.False(t, IsObject(json.RawMessage(`{`)))
}
