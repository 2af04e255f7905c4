package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Fail_MissingFields simulates records lacking fields their schema
// requires, verifying the reported record kind, identifier and field name.
func TestParse_Fail_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantKind  string
		wantID    string
		wantField string
	}{
		{
			name:      "ClassWithoutName",
			input:     `<mesh><class id="0x1"></class></mesh>`,
			wantKind:  ElementClass,
			wantID:    "0x1",
			wantField: ElementName,
		},
		{
			name: "GeomWithoutRank",
			input: `<mesh><class id="0x1"><name>DISK</name>
				<geom id="0x11"><class ref="0x1"/><name>ada0</name></geom>
			</class></mesh>`,
			wantKind:  ElementGeom,
			wantID:    "0x11",
			wantField: ElementRank,
		},
		{
			name: "ProviderWithoutMode",
			input: `<mesh><class id="0x1"><name>SWAP</name>
				<geom id="0x11"><class ref="0x1"/><name>swap</name><rank>1</rank>
					<provider id="0x21"><geom ref="0x11"/><name>swap</name>
						<mediasize>1024</mediasize><sectorsize>512</sectorsize>
						<stripesize>0</stripesize><stripeoffset>0</stripeoffset>
					</provider>
				</geom>
			</class></mesh>`,
			wantKind:  ElementProvider,
			wantID:    "0x21",
			wantField: ElementMode,
		},
		{
			name: "ConsumerWithoutGeomRef",
			input: `<mesh><class id="0x1"><name>DEV</name>
				<geom id="0x11"><class ref="0x1"/><name>ada0</name><rank>2</rank>
					<consumer id="0x31"><mode>r0w0e0</mode></consumer>
				</geom>
			</class></mesh>`,
			wantKind:  ElementConsumer,
			wantID:    "0x31",
			wantField: ElementGeom,
		},
		{
			name: "DiskProviderWithoutConfig",
			input: `<mesh><class id="0x1"><name>DISK</name>
				<geom id="0x11"><class ref="0x1"/><name>ada0</name><rank>1</rank>
					<provider id="0x21"><geom ref="0x11"/><mode>r0w0e0</mode><name>ada0</name>
						<mediasize>1024</mediasize><sectorsize>512</sectorsize>
						<stripesize>0</stripesize><stripeoffset>0</stripeoffset>
					</provider>
				</geom>
			</class></mesh>`,
			wantKind:  ElementProvider,
			wantID:    "0x21",
			wantField: ElementConfig,
		},
		{
			name: "PartTableWithoutScheme",
			input: `<mesh><class id="0x2"><name>PART</name>
				<geom id="0x12"><class ref="0x2"/><name>ada0</name><rank>2</rank>
					<config><entries>128</entries><first>40</first><last>100</last>
					<fwsectors>63</fwsectors><fwheads>16</fwheads>
					<state>OK</state><modified>false</modified></config>
				</geom>
			</class></mesh>`,
			wantKind:  ElementGeom,
			wantID:    "0x12",
			wantField: FieldScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mesh, err := Parse([]byte(tt.input))
			require.Error(t, err, "expected an error from Parse")
			assert.Nil(t, mesh, "expected no mesh on decode failure")

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr, "error should be a DecodeError")
			assert.Equal(t, tt.wantKind, decodeErr.Kind, "record kind mismatch")
			assert.Equal(t, tt.wantID, decodeErr.ID, "record id mismatch")
			assert.Equal(t, tt.wantField, decodeErr.Field, "field name mismatch")
			assert.ErrorIs(t, err, ErrFieldMissing, "cause should be ErrFieldMissing")
		})
	}
}

// TestParse_Fail_InvalidFields simulates records whose fields are present but
// unparsable against the schema type.
func TestParse_Fail_InvalidFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantKind  string
		wantField string
	}{
		{
			name:      "GeomWithUnparsableID",
			input:     `<mesh><class id="0x1"><name>FD</name><geom id="giraffe"><class ref="0x1"/><name>fd0</name><rank>1</rank></geom></class></mesh>`,
			wantKind:  ElementGeom,
			wantField: AttrID,
		},
		{
			name: "GeomWithUnparsableRank",
			input: `<mesh><class id="0x1"><name>FD</name>
				<geom id="0x11"><class ref="0x1"/><name>fd0</name><rank>minus one</rank></geom>
			</class></mesh>`,
			wantKind:  ElementGeom,
			wantField: ElementRank,
		},
		{
			name: "ConsumerWithUnparsableMode",
			input: `<mesh><class id="0x1"><name>DEV</name>
				<geom id="0x11"><class ref="0x1"/><name>ada0</name><rank>2</rank>
					<consumer id="0x31"><geom ref="0x11"/><mode>read-write</mode></consumer>
				</geom>
			</class></mesh>`,
			wantKind:  ElementConsumer,
			wantField: ElementMode,
		},
		{
			name: "PartTableWithUnparsableEntries",
			input: `<mesh><class id="0x2"><name>PART</name>
				<geom id="0x12"><class ref="0x2"/><name>ada0</name><rank>2</rank>
					<config><scheme>GPT</scheme><entries>many</entries><first>40</first>
					<last>100</last><fwsectors>63</fwsectors><fwheads>16</fwheads>
					<state>OK</state><modified>false</modified></config>
				</geom>
			</class></mesh>`,
			wantKind:  ElementGeom,
			wantField: FieldEntries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mesh, err := Parse([]byte(tt.input))
			require.Error(t, err, "expected an error from Parse")
			assert.Nil(t, mesh, "expected no mesh on decode failure")

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr, "error should be a DecodeError")
			assert.Equal(t, tt.wantKind, decodeErr.Kind, "record kind mismatch")
			assert.Equal(t, tt.wantField, decodeErr.Field, "field name mismatch")
			assert.ErrorIs(t, err, ErrFieldInvalid, "cause should be ErrFieldInvalid")
		})
	}
}

// TestParse_Fail_MissingID ensures a record without its identifier attribute
// reports a DecodeError with an empty ID.
func TestParse_Fail_MissingID(t *testing.T) {
	t.Parallel()

	mesh, err := Parse([]byte(`<mesh><class><name>FD</name></class></mesh>`))
	require.Error(t, err, "expected an error from Parse")
	assert.Nil(t, mesh, "expected no mesh on decode failure")

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr, "error should be a DecodeError")
	assert.Equal(t, ElementClass, decodeErr.Kind, "record kind mismatch")
	assert.Empty(t, decodeErr.ID, "id should stay empty when unreadable")
	assert.Equal(t, AttrID, decodeErr.Field, "field name mismatch")
	assert.ErrorIs(t, err, ErrFieldMissing, "cause should be ErrFieldMissing")
}
