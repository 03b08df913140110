package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestJSONCodec(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec, "codec must be registered")

	t.Log("plain request struct")
	{
		data, err := codec.Marshal(&AssignRequest{Id: "7d1f3bb4-1c5e-4bd3-8f55-5f7b0a0e7f01", EmployeeId: "e7be204e-b693-4b99-b067-2eae1610b3ee"})
		require.NoError(t, err)

		var req AssignRequest
		require.NoError(t, codec.Unmarshal(data, &req))
		require.Equal(t, "e7be204e-b693-4b99-b067-2eae1610b3ee", req.EmployeeId)
	}

	t.Log("empty protobuf message")
	{
		data, err := codec.Marshal(new(emptypb.Empty))
		require.NoError(t, err)
		require.JSONEq(t, "{}", string(data))

		require.NoError(t, codec.Unmarshal(data, new(emptypb.Empty)))
		require.Error(t, codec.Unmarshal([]byte(`{"unknown":1}`), new(emptypb.Empty)), "unknown fields are rejected for protobuf messages")
	}
}
