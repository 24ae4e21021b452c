package native

import (
	"testing"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/uikit/asset"
)

func TestNewRequiresDevice(t *testing.T) {
	if _, err := New(nil, nil); err != ErrNilDevice {
		t.Errorf("New(nil, nil) error = %v, want ErrNilDevice", err)
	}
}

func TestDescribeTexture(t *testing.T) {
	desc := describeTexture(asset.TextureMeta{
		Width:  64,
		Height: 32,
		Format: asset.TextureFormatRGBA32Float,
	})

	if desc.Size.Width != 64 || desc.Size.Height != 32 || desc.Size.DepthOrArrayLayers != 1 {
		t.Errorf("Size = %+v, want 64x32x1", desc.Size)
	}
	if desc.MipLevelCount != 1 {
		t.Errorf("MipLevelCount = %d, want 1", desc.MipLevelCount)
	}
	if desc.Format != types.TextureFormatRGBA32Float {
		t.Errorf("Format = %v, want RGBA32Float", desc.Format)
	}
	if desc.Usage&types.TextureUsageTextureBinding == 0 {
		t.Error("Usage missing TextureBinding")
	}
}

func TestToWGPUFormat(t *testing.T) {
	tests := []struct {
		in   asset.TextureFormat
		want types.TextureFormat
	}{
		{asset.TextureFormatRGBA32Float, types.TextureFormatRGBA32Float},
		{asset.TextureFormatRGBA8, types.TextureFormatRGBA8Unorm},
		{asset.TextureFormatR8, types.TextureFormatR8Unorm},
	}
	for _, tt := range tests {
		if got := toWGPUFormat(tt.in); got != tt.want {
			t.Errorf("toWGPUFormat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
