package labmanager

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmware/govmomi/vim25/soap"
)

func TestClassifyFaultPrefersFaultstring(t *testing.T) {
	sf := &soap.Fault{
		Code:   "soap:Server",
		String: "The specified configuration was not found.",
	}

	f := classifyFault("GetConfiguration", sf)
	require.Equal(t, "soap:Server", f.Code)
	require.Equal(t, "The specified configuration was not found.", f.Message)
	require.Contains(t, f.Error(), "GetConfiguration")
	require.Contains(t, f.Error(), "not found")
}

func TestClassifyFaultStripsDotNetMarker(t *testing.T) {
	sf := &soap.Fault{
		Code:   "soap:Server",
		String: "Server was unable to process request. ---> Object reference not set to an instance of an object.",
	}

	f := classifyFault("ConfigurationDeploy", sf)
	require.Equal(t, "Object reference not set to an instance of an object.", f.Message)
}

func TestClassifyFaultFallsBackToDetail(t *testing.T) {
	sf := &soap.Fault{Code: "soap:Server"}
	sf.Detail.Fault = "deep detail message"

	f := classifyFault("ConfigurationDeploy", sf)
	require.Equal(t, "deep detail message", f.Message)
	require.Equal(t, "deep detail message", f.Detail)
}

func TestClassifyFaultFallsBackToCode(t *testing.T) {
	sf := &soap.Fault{Code: "soap:Client"}

	f := classifyFault("ConfigurationDeploy", sf)
	require.Equal(t, "soap:Client", f.Message)
}

func TestErrorTaxonomy(t *testing.T) {
	var err error

	err = &CallerError{Op: "ListConfigurations", Reason: "bad selector"}
	var ce *CallerError
	require.ErrorAs(t, err, &ce)

	inner := errors.New("connection refused")
	err = &TransportError{Op: "GetConfiguration", Err: inner}
	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.ErrorIs(t, err, inner)

	err = &Fault{Op: "ConfigurationDeploy", Message: "boom"}
	var f *Fault
	require.ErrorAs(t, err, &f)
}
