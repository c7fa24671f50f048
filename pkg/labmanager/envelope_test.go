package labmanager

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmware/govmomi/vim25/xml"
)

func TestBuildParamsConversion(t *testing.T) {
	op := &operation{
		Name: "TestOp",
		Params: []paramSpec{
			p("configurationId", kindInt),
			p("newName", kindString),
			p("isFullClone", kindBool),
			p("lease", kindLong),
		},
	}

	params, err := buildParams(op, []any{7, "web-tier", true, int64(3600000)})
	require.NoError(t, err)
	require.Len(t, params, 4)

	require.Equal(t, "7", params[0].text)
	require.Equal(t, "web-tier", params[1].text)
	require.Equal(t, "true", params[2].text)
	require.Equal(t, "3600000", params[3].text)
}

func TestBuildParamsArity(t *testing.T) {
	op := catalog["ConfigurationCheckout"]

	t.Run("missing required", func(t *testing.T) {
		_, err := buildParams(op, []any{42})
		var ce *CallerError
		require.ErrorAs(t, err, &ce)
		require.Contains(t, ce.Reason, "workspaceName")
	})

	t.Run("too many", func(t *testing.T) {
		_, err := buildParams(op, []any{42, "ws", "extra"})
		var ce *CallerError
		require.ErrorAs(t, err, &ce)
		require.Contains(t, ce.Reason, "too many arguments")
	})
}

func TestBuildParamsOptionalDefaults(t *testing.T) {
	op := catalog["ConfigurationAddMachineEx"]

	params, err := buildParams(op, []any{10, 20, "node1"})
	require.NoError(t, err)

	// desc, boot_seq and boot_delay default to "" and 0.
	require.Len(t, params, 6)
	require.Equal(t, "desc", params[3].name)
	require.Equal(t, "", params[3].text)
	require.Equal(t, "boot_seq", params[4].name)
	require.Equal(t, "0", params[4].text)
	require.Equal(t, "boot_delay", params[5].name)
	require.Equal(t, "0", params[5].text)
}

func TestBuildParamsWrongType(t *testing.T) {
	op := catalog["ConfigurationCheckout"]

	_, err := buildParams(op, []any{"not-an-int", "ws"})
	var ce *CallerError
	require.ErrorAs(t, err, &ce)
	require.Contains(t, ce.Reason, "expected integer")
}

func TestBuildParamsEnum(t *testing.T) {
	op := catalog["ListConfigurations"]

	for _, valid := range []int{ConfigurationTypeWorkspace, ConfigurationTypeLibrary} {
		_, err := buildParams(op, []any{valid})
		require.NoError(t, err)
	}

	_, err := buildParams(op, []any{3})
	var ce *CallerError
	require.ErrorAs(t, err, &ce)
	require.Contains(t, ce.Reason, "outside allowed set")
}

func TestBuildParamsRecords(t *testing.T) {
	op := &operation{
		Name:   "TestOp",
		Params: []paramSpec{p("vmCopyData", kindRecords)},
	}

	params, err := buildParams(op, []any{[]Record{
		{Name: "VMCopyData", Fields: []Field{
			{Name: "machineId", Value: 11},
			{Name: "storageServerId", Value: 3},
		}},
		{Name: "VMCopyData", Fields: []Field{
			{Name: "machineId", Value: 12},
		}},
	}})
	require.NoError(t, err)
	require.Len(t, params, 1)
	require.True(t, params[0].parent)
	require.Len(t, params[0].children, 2)
	require.Equal(t, "VMCopyData", params[0].children[0].name)
	require.Equal(t, "machineId", params[0].children[0].children[0].name)
	require.Equal(t, "11", params[0].children[0].children[0].text)
}

func TestBuildParamsRecordsNested(t *testing.T) {
	op := &operation{
		Name:   "TestOp",
		Params: []paramSpec{p("nics", kindRecords)},
	}

	params, err := buildParams(op, []any{[]Record{
		{Name: "NicData", Fields: []Field{
			{Name: "nicId", Value: 1},
			{Name: "addressing", Value: Record{Name: "Addressing", Fields: []Field{
				{Name: "mode", Value: "STATIC_MANUAL"},
				{Name: "ip", Value: "10.6.1.42"},
			}}},
		}},
	}})
	require.NoError(t, err)

	nic := params[0].children[0]
	require.Equal(t, "addressing", nic.children[1].name)
	require.Equal(t, "mode", nic.children[1].children[0].name)
}

func TestBuildParamsRecordsBadField(t *testing.T) {
	op := &operation{
		Name:   "TestOp",
		Params: []paramSpec{p("vmCopyData", kindRecords)},
	}

	_, err := buildParams(op, []any{[]Record{
		{Name: "VMCopyData", Fields: []Field{{Name: "weird", Value: 3.14}}},
	}})
	var ce *CallerError
	require.ErrorAs(t, err, &ce)
	require.Contains(t, ce.Reason, "unsupported type")
}

func TestRequestBodyMarshal(t *testing.T) {
	req := &requestBody{
		op:        "ConfigurationDeploy",
		namespace: "http://vmware.com/labmanager",
		params: []wireParam{
			{name: "configurationId", text: "42"},
			{name: "isCached", text: "false"},
			{name: "fenceMode", text: "4"},
		},
	}

	b, err := xml.Marshal(req)
	require.NoError(t, err)

	got := string(b)
	require.Contains(t, got, `<ConfigurationDeploy xmlns="http://vmware.com/labmanager">`)
	require.Contains(t, got, "<configurationId>42</configurationId>")
	require.Contains(t, got, "<isCached>false</isCached>")
	require.Contains(t, got, "<fenceMode>4</fenceMode>")

	// Parameter order must match the declaration order.
	require.Less(t, strings.Index(got, "configurationId"), strings.Index(got, "fenceMode"))
}

func TestRequestBodyMarshalRecords(t *testing.T) {
	req := &requestBody{
		op:        "ConfigurationCopy",
		namespace: "http://vmware.com/labmanager",
		params: []wireParam{
			{name: "configurationId", text: "7"},
			{name: "vmCopyData", parent: true, children: []wireParam{
				{name: "VMCopyData", parent: true, children: []wireParam{
					{name: "machineId", text: "11"},
				}},
			}},
		},
	}

	b, err := xml.Marshal(req)
	require.NoError(t, err)
	require.Contains(t, string(b), "<vmCopyData><VMCopyData><machineId>11</machineId></VMCopyData></vmCopyData>")
}

func TestCallerErrorBeforeNetwork(t *testing.T) {
	// A client bound to an unroutable host: if validation did not happen
	// first, these calls would fail with a transport error instead.
	c, err := New("user", "pass", "labmanager.invalid", "Global", "Main")
	require.NoError(t, err)

	_, err = c.ListConfigurations(context.Background(), 3)
	var ce *CallerError
	require.ErrorAs(t, err, &ce)

	var te *TransportError
	require.False(t, errors.As(err, &te))
}
