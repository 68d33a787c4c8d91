package bam

// Functions in this file provide unsafe casting from sam.Record fields to
// []byte.

import (
	"reflect"
	"unsafe"

	"github.com/grailbio/hts/sam"
)

// UnsafeDoubletsToBytes casts []sam.Doublet to []byte.
func UnsafeDoubletsToBytes(src []sam.Doublet) (d []byte) {
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&src))
	dh := (*reflect.SliceHeader)(unsafe.Pointer(&d))
	*dh = *sh
	return d
}
