package labmanager

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmware/govmomi/vim25/xml"
)

func parseBody(t *testing.T, s string) *Element {
	t.Helper()
	var el Element
	require.NoError(t, xml.Unmarshal([]byte(s), &el))
	return &el
}

func TestNormalizeListCardinality(t *testing.T) {
	op := catalog["ListConfigurations"]

	tests := []struct {
		name string
		body string
		want int
	}{
		{
			"absent wrapper",
			`<ListConfigurationsResponse xmlns="http://vmware.com/labmanager"></ListConfigurationsResponse>`,
			0,
		},
		{
			"empty wrapper",
			`<ListConfigurationsResponse><ListConfigurationsResult></ListConfigurationsResult></ListConfigurationsResponse>`,
			0,
		},
		{
			"single item",
			`<ListConfigurationsResponse><ListConfigurationsResult>` +
				`<Configuration><id>1</id><name>only</name></Configuration>` +
				`</ListConfigurationsResult></ListConfigurationsResponse>`,
			1,
		},
		{
			"many items",
			`<ListConfigurationsResponse><ListConfigurationsResult>` +
				`<Configuration><id>1</id></Configuration>` +
				`<Configuration><id>2</id></Configuration>` +
				`<Configuration><id>3</id></Configuration>` +
				`</ListConfigurationsResult></ListConfigurationsResponse>`,
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := normalizeList(op, parseBody(t, tt.body))
			require.NoError(t, err)
			require.NotNil(t, items)
			require.Len(t, items, tt.want)
		})
	}
}

func TestNormalizeListFiltersItemName(t *testing.T) {
	op := catalog["ListConfigurations"]

	body := parseBody(t, `<ListConfigurationsResponse><ListConfigurationsResult>`+
		`<Configuration><id>1</id></Configuration>`+
		`<Noise>ignored</Noise>`+
		`</ListConfigurationsResult></ListConfigurationsResponse>`)

	items, err := normalizeList(op, body)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Configuration", items[0].XMLName.Local)
}

func TestNormalizeScalar(t *testing.T) {
	op := catalog["ConfigurationCheckout"]

	body := parseBody(t, `<ConfigurationCheckoutResponse>`+
		`<ConfigurationCheckoutResult>888</ConfigurationCheckoutResult>`+
		`</ConfigurationCheckoutResponse>`)

	s, err := normalizeScalar(op, body)
	require.NoError(t, err)
	require.Equal(t, "888", s)
}

func TestNormalizeScalarMissingResult(t *testing.T) {
	op := catalog["ConfigurationCheckout"]

	_, err := normalizeScalar(op, parseBody(t, `<ConfigurationCheckoutResponse/>`))
	var f *Fault
	require.ErrorAs(t, err, &f)
	require.Contains(t, f.Message, "no result")
}

func TestNormalizeObjectDecode(t *testing.T) {
	op := catalog["GetConfiguration"]

	body := parseBody(t, `<GetConfigurationResponse><GetConfigurationResult>`+
		`<id>42</id><name>myConfig</name><isDeployed>true</isDeployed><fenceMode>4</fenceMode>`+
		`</GetConfigurationResult></GetConfigurationResponse>`)

	el, err := normalizeObject(op, body)
	require.NoError(t, err)

	var cfg Configuration
	require.NoError(t, el.Decode(&cfg))
	require.Equal(t, 42, cfg.ID)
	require.Equal(t, "myConfig", cfg.Name)
	require.True(t, cfg.IsDeployed)
	require.Equal(t, 4, cfg.FenceMode)
}

func TestNormalizePostHook(t *testing.T) {
	op := catalog["StorageServerVMFSFindByName"]

	body := parseBody(t, `<StorageServerVMFSFindByNameResponse>`+
		`<StorageServerVMFSFindByNameResult>`+
		`<StorageServer><ignored>x</ignored></StorageServer><id>17</id>`+
		`</StorageServerVMFSFindByNameResult>`+
		`</StorageServerVMFSFindByNameResponse>`)

	s, err := normalizeScalar(op, body)
	require.NoError(t, err)
	require.Equal(t, "17", s)
}

func TestElementChildHelpers(t *testing.T) {
	el := parseBody(t, `<a><b>one</b><c>two</c></a>`)

	require.Equal(t, "one", el.ChildText("b"))
	require.Equal(t, "two", el.ChildText("c"))
	require.Equal(t, "", el.ChildText("missing"))
	require.Nil(t, el.Child("missing"))

	var nilEl *Element
	require.Nil(t, nilEl.Child("b"))
}
