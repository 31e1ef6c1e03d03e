// Package encoding implements the value codecs for sample blob payloads.
//
// Two codecs are provided, both behind the generic ColumnarEncoder and
// ColumnarDecoder interfaces:
//
//   - NumericRawEncoder / NumericRawDecoder: fixed 8 bytes per value,
//     IEEE-754 bits in the byte order of an endian.EndianEngine. O(1) random
//     access through At.
//   - NumericGorillaEncoder / NumericGorillaDecoder: the XOR float
//     compression from Facebook's Gorilla paper. Repeated values cost one bit
//     and slowly drifting values typically 12-20 bits. Access is sequential;
//     At decodes from the start of the payload.
//
// Encoders draw their output buffer from the internal pool. Call Finish when
// done so the buffer is recycled, and copy Bytes() first if the payload must
// outlive the encoder:
//
//	enc := encoding.NewNumericGorillaEncoder()
//	defer enc.Finish()
//
//	enc.WriteSlice(values)
//	payload := bytes.Clone(enc.Bytes())
//
// Decoders are stateless values and return iterators:
//
//	for v := range encoding.NewNumericGorillaDecoder().All(payload, len(values)) {
//	    fmt.Println(v)
//	}
//
// A decoder yields fewer than count values when the payload is truncated or
// malformed; callers that need an exact count must check it.
package encoding
